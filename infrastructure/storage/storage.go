// Package storage guarda os arquivos gerados pela aplicação (imagens das
// campanhas e relatórios) no S3 ou, sem bucket configurado, em disco.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/internal/config"
)

const keyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// New escolhe o backend a partir da configuração
func New(ctx context.Context, cfg config.Storage) (Storage, error) {
	if cfg.Bucket != "" {
		logrus.WithField("bucket", cfg.Bucket).Info("Usando armazenamento S3")
		return NewS3Storage(ctx, cfg)
	}

	logrus.WithField("path", cfg.LocalPath).Info("Usando armazenamento local")
	return NewLocalStorage(cfg.LocalPath, cfg.LocalPrefix)
}

// NewKey monta uma chave única no formato prefixo/aaaa/mm/id-nome
func NewKey(prefix, datePath, filename string) (string, error) {
	id, err := gonanoid.Generate(keyAlphabet, 12)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar identificador do arquivo: %w", err)
	}

	filename = sanitize(filename)
	if filename == "" {
		filename = "file"
	}

	return path.Join(prefix, datePath, id+"-"+filename), nil
}

func sanitize(name string) string {
	name = strings.ToLower(path.Base(strings.ReplaceAll(name, "\\", "/")))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), ".-")
}
