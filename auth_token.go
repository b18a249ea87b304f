package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/levigross/grequests"
)

// TokenResponse models the osu! OAuth token response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// FetchToken performs the client-credentials grant against the osu! OAuth
// endpoint with the public scope.
func FetchToken(ctx context.Context, clientID int, clientSecret string) (*TokenResponse, error) {
	resp, err := grequests.Post("https://osu.ppy.sh/oauth/token", grequests.FromRequestOptions(&grequests.RequestOptions{
		Context: ctx,
		Data: map[string]string{
			"client_id":     strconv.Itoa(clientID),
			"client_secret": clientSecret,
			"grant_type":    "client_credentials",
			"scope":         "public",
		},
		Headers:        map[string]string{"Accept": "application/json"},
		RequestTimeout: 15 * time.Second,
	}))
	if err != nil {
		return nil, fmt.Errorf("send token request: %w", err)
	}
	defer resp.Close()

	if !resp.Ok {
		return nil, fmt.Errorf("osu oauth error: status %d, body: %s", resp.StatusCode, resp.String())
	}

	var tok TokenResponse
	if err := resp.JSON(&tok); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return &tok, nil
}

func (t *TokenResponse) authHeader() string {
	return t.TokenType + " " + t.AccessToken
}
