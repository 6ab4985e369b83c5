package firebase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/pkg/logger"
	"google.golang.org/api/option"
)

// ErrUnsupportedProvider is returned for sign-in methods other than Google and Facebook.
var ErrUnsupportedProvider = errors.New("unsupported sign-in provider")

// App holds the initialized Firebase app and auth client
type App struct {
	FirebaseApp *firebase.App
	AuthClient  *auth.Client
}

// InitFirebase initializes the Firebase application and authentication client
func InitFirebase(ctx context.Context, credentialsPath string) (*App, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("firebase credentials path not provided")
	}

	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("firebase credentials file not found at %s", credentialsPath)
	}

	opt := option.WithCredentialsFile(credentialsPath)

	firebaseApp, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}

	logger.Log.Info("Firebase app and auth client initialized")
	return &App{FirebaseApp: firebaseApp, AuthClient: authClient}, nil
}

// tokenVerifier is the part of *auth.Client used to check ID tokens.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Verifier turns Firebase ID tokens from Google or Facebook sign-in into
// social identities.
type Verifier struct {
	client tokenVerifier
}

func NewVerifier(client *auth.Client) *Verifier {
	return &Verifier{client: client}
}

// VerifySocial validates the request's id_token. Client-supplied identity
// fields are ignored in favour of the token's claims.
func (v *Verifier) VerifySocial(ctx context.Context, req *models.SocialAuthRequest) (*models.SocialIdentity, error) {
	if req.IDToken == "" {
		return nil, errors.New("id_token is required")
	}

	token, err := v.client.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}
	return identityFromToken(token)
}

func identityFromToken(token *auth.Token) (*models.SocialIdentity, error) {
	signIn := token.Firebase.SignInProvider
	var provider string
	switch signIn {
	case "google.com":
		provider = models.ProviderGoogle
	case "facebook.com":
		provider = models.ProviderFacebook
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, signIn)
	}

	identity := &models.SocialIdentity{
		Provider:   provider,
		ProviderID: token.UID,
	}
	if ids, ok := token.Firebase.Identities[signIn].([]interface{}); ok && len(ids) > 0 {
		if id, ok := ids[0].(string); ok && id != "" {
			identity.ProviderID = id
		}
	}

	identity.Email, _ = token.Claims["email"].(string)
	identity.ProfileImage, _ = token.Claims["picture"].(string)
	if name, ok := token.Claims["name"].(string); ok {
		first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
		identity.FirstName = first
		identity.LastName = strings.TrimSpace(last)
	}

	if identity.Email == "" {
		return nil, errors.New("id token carries no email")
	}
	return identity, nil
}
