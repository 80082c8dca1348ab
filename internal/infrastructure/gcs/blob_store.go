// Package gcs implementa o jsonstore.BlobStore sobre o Google Cloud Storage.
// A geração do objeto faz o papel de versão: toda gravação é condicionada com
// IfGenerationMatch, e uma pré-condição violada vira domain.ErrVersionConflict.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/ascendtech/locacao-pro/internal/domain"
	"github.com/ascendtech/locacao-pro/internal/infrastructure/jsonstore"
)

var _ jsonstore.BlobStore = (*BlobStore)(nil)

// BlobStore armazena os blobs JSON como objetos na raiz de um bucket.
type BlobStore struct {
	client *storage.Client
	bucket *storage.BucketHandle
}

// NewBlobStore conecta ao bucket. Com credentialsFile vazio valem as
// credenciais padrão do ambiente (ADC).
func NewBlobStore(ctx context.Context, bucket, credentialsFile string) (*BlobStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs: conectar: %w", err)
	}
	return &BlobStore{client: client, bucket: client.Bucket(bucket)}, nil
}

// Close libera o cliente HTTP subjacente.
func (s *BlobStore) Close() error {
	return s.client.Close()
}

// Download lê o objeto inteiro e devolve a geração vigente. Um objeto
// inexistente é criado como coleção vazia na primeira leitura.
func (s *BlobStore) Download(ctx context.Context, name string) ([]byte, int64, error) {
	obj := s.bucket.Object(name)
	reader, err := obj.NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		gen, createErr := s.createEmpty(ctx, obj)
		if createErr == nil {
			return []byte("[]"), gen, nil
		}
		if !errors.Is(createErr, domain.ErrVersionConflict) {
			return nil, 0, createErr
		}
		// Outra sessão criou o objeto entre a leitura e a criação.
		reader, err = obj.NewReader(ctx)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("gcs: abrir %s: %w", name, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, 0, fmt.Errorf("gcs: ler %s: %w", name, err)
	}
	return data, reader.Attrs.Generation, nil
}

// Upload grava o objeto condicionado à geração esperada e devolve a nova.
func (s *BlobStore) Upload(ctx context.Context, name string, data []byte, expectGeneration int64) (int64, error) {
	obj := s.bucket.Object(name).If(storage.Conditions{GenerationMatch: expectGeneration})
	return s.write(ctx, obj, name, data)
}

// createEmpty cria o objeto com "[]" somente se ele ainda não existir.
func (s *BlobStore) createEmpty(ctx context.Context, obj *storage.ObjectHandle) (int64, error) {
	return s.write(ctx, obj.If(storage.Conditions{DoesNotExist: true}), obj.ObjectName(), []byte("[]"))
}

func (s *BlobStore) write(ctx context.Context, obj *storage.ObjectHandle, name string, data []byte) (int64, error) {
	writer := obj.NewWriter(ctx)
	writer.ContentType = "application/json"
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return 0, fmt.Errorf("gcs: gravar %s: %w", name, err)
	}
	if err := writer.Close(); err != nil {
		if isPreconditionFailed(err) {
			return 0, fmt.Errorf("gcs: %s: %w", name, domain.ErrVersionConflict)
		}
		return 0, fmt.Errorf("gcs: gravar %s: %w", name, err)
	}
	return writer.Attrs().Generation, nil
}

// isPreconditionFailed reconhece o HTTP 412 devolvido quando a geração
// esperada não corresponde mais ao objeto.
func isPreconditionFailed(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusPreconditionFailed
}
