package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenFileName is the name of the API token file inside the data
// directory.
const TokenFileName = "token"

// fileTokenStore keeps the raindrop.io API token in a plain file with
// owner-only permissions.
type fileTokenStore struct {
	path string
}

// NewFileTokenStore constructs a [TokenStore] writing to dataDir.
func NewFileTokenStore(dataDir string) TokenStore {
	return &fileTokenStore{path: filepath.Join(dataDir, TokenFileName)}
}

func (s *fileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("error creating token directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(strings.TrimSpace(token)+"\n"), 0o600); err != nil {
		return fmt.Errorf("error writing token file: %w", err)
	}
	return nil
}

func (s *fileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("error reading token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *fileTokenStore) Delete() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing token file: %w", err)
	}
	return nil
}
