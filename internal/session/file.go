package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FileStore persiste o token em um único arquivo 0600, o análogo local do
// localStorage do navegador. O valor corrente fica em memória; o arquivo é
// apenas o meio de sobreviver a reinícios do console.
type FileStore struct {
	mu    sync.RWMutex
	path  string
	token string
}

// NewFileStore carrega o token do arquivo, caso exista. Um arquivo ausente
// significa sessão ausente, não é erro.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrap(err, "erro ao ler o arquivo de sessão")
	}

	s.token = strings.TrimSpace(string(data))
	return s, nil
}

func (s *FileStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *FileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "erro ao criar o diretório de sessão")
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "erro ao gravar o arquivo de sessão")
	}

	s.token = token
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		// O token em memória já foi descartado; a falha em apagar o arquivo
		// não pode ressuscitar a sessão.
		logrus.WithError(err).Warn("session: falha ao remover o arquivo de sessão")
		return errors.Wrap(err, "erro ao remover o arquivo de sessão")
	}
	return nil
}
