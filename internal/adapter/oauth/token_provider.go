package oauth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
	"golang.org/x/oauth2"
)

const (
	DefaultAuthURL  = "https://www.strava.com/oauth/authorize"
	DefaultTokenURL = "https://www.strava.com/oauth/token"
)

// NewStravaConfig describes the Strava OAuth application. Strava expects
// the client credentials in the request body.
func NewStravaConfig(clientID, clientSecret, tokenURL string) *oauth2.Config {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   DefaultAuthURL,
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// TokenProvider hands out a valid access token per user, refreshing and
// storing it when the stored one has expired.
type TokenProvider struct {
	repo       ports.TokenRepository
	config     *oauth2.Config
	httpClient *http.Client
	logger     ports.LoggerPort
}

func NewTokenProvider(repo ports.TokenRepository, config *oauth2.Config, httpClient *http.Client, logger ports.LoggerPort) *TokenProvider {
	return &TokenProvider{
		repo:       repo,
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (p *TokenProvider) AccessToken(ctx context.Context, userID uuid.UUID) (string, error) {
	stored, err := p.repo.GetToken(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load strava token: %w", err)
	}

	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	current := &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       stored.ExpiresAt,
	}
	token, err := p.config.TokenSource(ctx, current).Token()
	if err != nil {
		p.logger.Error("Failed to refresh strava token", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID.String(),
		})
		return "", fmt.Errorf("refresh strava token: %w", err)
	}

	if token.AccessToken != stored.AccessToken {
		refreshed := &domain.StravaToken{
			UserID:       userID,
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
			ExpiresAt:    token.Expiry,
		}
		if err := p.repo.SaveToken(ctx, refreshed); err != nil {
			return "", fmt.Errorf("save refreshed token: %w", err)
		}
		p.logger.Info("Strava token refreshed", map[string]interface{}{
			"user_id":    userID.String(),
			"expires_at": token.Expiry,
		})
	}

	return token.AccessToken, nil
}
