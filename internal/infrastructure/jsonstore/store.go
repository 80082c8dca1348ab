// Package jsonstore persiste as coleções do sistema como blobs JSON nomeados
// (um arquivo por coleção) em um armazenamento de objetos. Cada mutação é um
// ciclo ler-coleção-inteira → alterar → gravar-coleção-inteira, condicionado
// à geração do blob lida no início do ciclo (check-and-set): duas sessões
// concorrentes nunca se sobrescrevem silenciosamente.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Nomes dos blobs de coleção, compatíveis com os arquivos já existentes.
const (
	BlobClients   = "clients.json"
	BlobContracts = "contracts.json"
	BlobInvoices  = "invoices.json"
	BlobUsers     = "users.json"
	BlobConfig    = "config.json"
)

// maxAttempts tentativas de escrita antes de desistir com ErrVersionConflict.
const maxAttempts = 5

// BlobStore define o porto de armazenamento bruto dos blobs JSON.
type BlobStore interface {
	// Download devolve o conteúdo do blob e a geração (versão) atual.
	// Um blob inexistente é criado vazio ("[]") na primeira leitura.
	Download(ctx context.Context, name string) (data []byte, generation int64, err error)
	// Upload grava o blob condicionado à geração informada e devolve a nova
	// geração. Devolve domain.ErrVersionConflict quando a geração esperada já
	// não corresponde ao objeto (outra sessão gravou primeiro).
	Upload(ctx context.Context, name string, data []byte, expectGeneration int64) (int64, error)
}

// encodeJSON serializa com indentação de 4 espaços e sem escapar caracteres
// não-ASCII, o mesmo formato dos arquivos gravados pelo sistema anterior.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("jsonstore: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// emptyPayload informa se o conteúdo equivale a uma coleção vazia.
func emptyPayload(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("{}"))
}
