// Package uploads guarda os arquivos de imagem selecionados para um produto
// antes do envio definitivo. Os arquivos temporários são o análogo das
// referências locais de preview do navegador: nunca aparecem no payload de
// criação do produto e são liberados tanto após o envio bem-sucedido quanto
// quando o conjunto de previews é substituído antes do envio.
package uploads

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-console/pkg/utils"
)

// StagedImage é uma referência transitória a um arquivo de preview.
type StagedImage struct {
	ID       string `json:"id"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`

	path string
}

// IncomingFile é um arquivo recebido do navegador para staging.
type IncomingFile struct {
	FileName string
	Reader   io.Reader
}

// Staging administra o conjunto corrente de previews de um vendedor.
type Staging struct {
	mu     sync.Mutex
	dir    string
	images []StagedImage
}

func NewStaging(dir string) (*Staging, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "erro ao criar o diretório de staging")
	}
	return &Staging{dir: dir}, nil
}

// Stage substitui o conjunto de previews pelos arquivos recebidos. O conjunto
// anterior é liberado antes da gravação do novo, em qualquer caminho.
func (s *Staging) Stage(files []IncomingFile) ([]StagedImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseLocked()

	staged := make([]StagedImage, 0, len(files))
	for _, file := range files {
		image, err := s.write(file)
		if err != nil {
			// Libera o que já foi gravado para não vazar arquivos parciais.
			for _, partial := range staged {
				s.remove(partial)
			}
			return nil, err
		}
		staged = append(staged, image)
	}

	s.images = staged
	return append([]StagedImage(nil), staged...), nil
}

// List devolve o conjunto corrente de previews.
func (s *Staging) List() []StagedImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StagedImage(nil), s.images...)
}

// Open abre um preview para leitura (exibição ou envio definitivo).
func (s *Staging) Open(id string) (io.ReadCloser, *StagedImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.images {
		if s.images[i].ID == id {
			f, err := os.Open(s.images[i].path)
			if err != nil {
				return nil, nil, errors.Wrap(err, "erro ao abrir o arquivo de preview")
			}
			image := s.images[i]
			return f, &image, nil
		}
	}
	return nil, nil, os.ErrNotExist
}

// Release remove todos os previews correntes. Chamado após a criação
// bem-sucedida do produto.
func (s *Staging) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked()
}

func (s *Staging) releaseLocked() {
	for _, image := range s.images {
		s.remove(image)
	}
	s.images = nil
}

func (s *Staging) remove(image StagedImage) {
	if err := os.Remove(image.path); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("file", image.FileName).
			Warn("uploads: falha ao remover arquivo de preview")
	}
}

func (s *Staging) write(file IncomingFile) (StagedImage, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return StagedImage{}, errors.Wrap(err, "erro ao gerar o identificador do preview")
	}
	path := filepath.Join(s.dir, id)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return StagedImage{}, errors.Wrap(err, "erro ao criar o arquivo de preview")
	}
	defer dst.Close()

	size, err := io.Copy(dst, file.Reader)
	if err != nil {
		os.Remove(path)
		return StagedImage{}, errors.Wrapf(err, "erro ao gravar o preview de %s", file.FileName)
	}

	return StagedImage{
		ID:       id,
		FileName: file.FileName,
		Size:     size,
		path:     path,
	}, nil
}
