package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type LocalStorage struct {
	root   string
	prefix string
}

func NewLocalStorage(root, prefix string) (*LocalStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("diretório de armazenamento não configurado")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório %s: %w", root, err)
	}

	return &LocalStorage{
		root:   root,
		prefix: strings.TrimRight(prefix, "/"),
	}, nil
}

func (s *LocalStorage) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	target, err := s.path(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório: %w", err)
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar %s: %w", key, err)
	}

	return s.prefix + "/" + key, nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	target, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("erro ao remover %s: %w", key, err)
	}
	return nil
}

// path impede que a chave escape do diretório raiz
func (s *LocalStorage) path(key string) (string, error) {
	target := filepath.Join(s.root, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("chave inválida: %s", key)
	}
	return target, nil
}
