package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/vidget/media-downloader/internal/model"
	"github.com/vidget/media-downloader/internal/platform"
)

const userInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// Page shown in the browser tab after the loopback redirect
const signInDonePage = `<html><body><p>Login concluído. Você pode fechar esta janela.</p></body></html>`

// GoogleProvider implements Provider with Google's OAuth loopback flow for
// desktop applications. The identity never outlives the process; there is
// no persisted local session.
type GoogleProvider struct {
	state   *identityState
	oauth   *oauth2.Config
	openURL func(string) error
	logger  *slog.Logger
}

// NewGoogleProvider creates the provider. Empty credentials produce a
// provider whose SignIn fails with ErrNotConfigured.
func NewGoogleProvider(clientID, clientSecret string, logger *slog.Logger) *GoogleProvider {
	if logger == nil {
		logger = slog.Default()
	}

	p := &GoogleProvider{
		state: newIdentityState(),
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "profile", "email"},
		},
		openURL: platform.OpenBrowser,
		logger:  logger,
	}

	// There is no persisted session to restore; the handshake settles
	// immediately with no identity, mirroring a provider that reports
	// "signed out" after its startup check.
	go p.state.set(nil)

	return p
}

// Subscribe implements Provider
func (p *GoogleProvider) Subscribe(callback func(*model.Identity)) func() {
	return p.state.subscribe(callback)
}

// IsLoading implements Provider
func (p *GoogleProvider) IsLoading() bool {
	return p.state.isLoading()
}

// SignIn runs the loopback OAuth flow: open the consent page in a browser,
// receive the authorization code on a localhost redirect, exchange it, and
// resolve the user info.
func (p *GoogleProvider) SignIn(ctx context.Context) error {
	if p.oauth.ClientID == "" || p.oauth.ClientSecret == "" {
		return ErrNotConfigured
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("open loopback listener: %w", err)
	}
	defer listener.Close()

	cfg := *p.oauth
	cfg.RedirectURL = fmt.Sprintf("http://%s/callback", listener.Addr().String())

	state, err := randomState()
	if err != nil {
		return err
	}

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)
	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/callback" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("state") != state {
			errCh <- fmt.Errorf("state mismatch in oauth redirect")
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, signInDonePage)
		codeCh <- r.URL.Query().Get("code")
	})}
	go server.Serve(listener)
	defer server.Close()

	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
	if err := p.openURL(authURL); err != nil {
		return fmt.Errorf("open browser for sign-in: %w", err)
	}

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	identity, err := fetchUserInfo(ctx, &cfg, token)
	if err != nil {
		return err
	}

	p.logger.Info("signed in", "user", identity.UID)
	p.state.set(identity)
	return nil
}

// SignOut drops the identity. The provider holds no server-side session to
// revoke for this prototype.
func (p *GoogleProvider) SignOut(ctx context.Context) error {
	p.logger.Info("signed out")
	p.state.set(nil)
	return nil
}

// fetchUserInfo resolves the signed-in user's profile through the token
func fetchUserInfo(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (*model.Identity, error) {
	resp, err := cfg.Client(ctx, token).Get(userInfoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request returned %s", resp.Status)
	}

	return parseUserInfo(resp.Body)
}

type userInfoPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Email   string `json:"email"`
}

func parseUserInfo(r io.Reader) (*model.Identity, error) {
	var payload userInfoPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	if payload.ID == "" {
		return nil, fmt.Errorf("user info has no id")
	}

	return &model.Identity{
		UID:         payload.ID,
		DisplayName: payload.Name,
		PhotoURL:    payload.Picture,
		Email:       payload.Email,
	}, nil
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate oauth state: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
