package main

import (
	"sync"
	"time"
)

const (
	apiRateLimit          = 30
	apiWindow             = time.Minute
	maxConcurrentRequests = 2
)

var apiTicker = time.NewTicker(apiWindow / apiRateLimit)
var apiAttempts []time.Time
var apiAttemptsLock sync.Mutex

var requestSlots = make(chan struct{}, maxConcurrentRequests)

func init() {
	for i := 0; i < maxConcurrentRequests; i++ {
		requestSlots <- struct{}{}
	}
}

// acquireRequestSlot bounds in-flight osu! requests. The returned func
// releases the slot.
func acquireRequestSlot() func() {
	<-requestSlots
	return func() {
		requestSlots <- struct{}{}
	}
}

// throttleAPI blocks until a request fits inside the sliding rate window.
func throttleAPI() {
	for range apiTicker.C {
		apiAttemptsLock.Lock()
		att := apiAttempts
		if len(att) < apiRateLimit || time.Since(att[0]) > apiWindow {
			att = append(att, time.Now())
			if len(att) > apiRateLimit {
				att = att[1:]
			}
			apiAttempts = att
			apiAttemptsLock.Unlock()
			return
		}
		apiAttemptsLock.Unlock()
	}
}
