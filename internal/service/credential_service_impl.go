package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/liftoff/internal/llm"
	"github.com/alexanderramin/liftoff/internal/repository"
)

const (
	apiKeySetting = "gemini_api_key"

	// APIKeyEnv overrides any stored key.
	APIKeyEnv = "LIFTOFF_GEMINI_API_KEY"
)

type credentialService struct {
	settings repository.SettingsRepo
	observer UseCaseObserver
}

func NewCredentialService(settings repository.SettingsRepo, observers ...UseCaseObserver) CredentialService {
	return &credentialService{
		settings: settings,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *credentialService) Has(ctx context.Context) bool {
	_, err := s.APIKey(ctx)
	return err == nil
}

func (s *credentialService) Save(ctx context.Context, credential string) (err error) {
	startedAt := time.Now().UTC()
	defer func() { observe(ctx, s.observer, "save-credential", startedAt, err, nil) }()

	credential = strings.TrimSpace(credential)
	if credential == "" {
		return ErrBlankCredential
	}
	if err = s.settings.Put(ctx, apiKeySetting, credential); err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}
	return nil
}

// APIKey returns the environment override when set, else the stored key.
// It returns llm.ErrCredentialMissing when neither exists.
func (s *credentialService) APIKey(ctx context.Context) (string, error) {
	if v := strings.TrimSpace(os.Getenv(APIKeyEnv)); v != "" {
		return v, nil
	}
	v, err := s.settings.Get(ctx, apiKeySetting)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", llm.ErrCredentialMissing
		}
		return "", fmt.Errorf("reading credential: %w", err)
	}
	if strings.TrimSpace(v) == "" {
		return "", llm.ErrCredentialMissing
	}
	return v, nil
}

func (s *credentialService) Source(ctx context.Context) CredentialSource {
	if strings.TrimSpace(os.Getenv(APIKeyEnv)) != "" {
		return CredentialEnv
	}
	if s.Has(ctx) {
		return CredentialStored
	}
	return CredentialNone
}

func (s *credentialService) Clear(ctx context.Context) error {
	return s.settings.Delete(ctx, apiKeySetting)
}
