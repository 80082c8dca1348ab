package dto

import "github.com/ascendtech/locacao-pro/internal/domain/entity"

// LegalRepRequest representante legal no cadastro de Pessoa Jurídica.
type LegalRepRequest struct {
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	DataNascimento string `json:"data_nascimento,omitempty"`
	Telefone       string `json:"telefone,omitempty"`
	Email          string `json:"email,omitempty"`
}

// CreateClientRequest body para POST /api/clients. O CPF/CNPJ pode vir com ou
// sem máscara; logradouro, número e bairro são montados em um endereço único.
type CreateClientRequest struct {
	TipoPessoa         string           `json:"tipo_pessoa"`
	NomeRazaoSocial    string           `json:"nome_razao_social"`
	CPFCNPJ            string           `json:"cpf_cnpj"`
	DataNascimento     string           `json:"data_nascimento,omitempty"`
	Email              string           `json:"email,omitempty"`
	Telefone           string           `json:"telefone,omitempty"`
	CEP                string           `json:"cep,omitempty"`
	Logradouro         string           `json:"logradouro,omitempty"`
	Numero             string           `json:"numero,omitempty"`
	Bairro             string           `json:"bairro,omitempty"`
	Cidade             string           `json:"cidade,omitempty"`
	Estado             string           `json:"estado,omitempty"`
	RepresentanteLegal *LegalRepRequest `json:"representante_legal,omitempty"`
}

// ClientResponse cliente em respostas; mesmo formato do registro persistido.
type ClientResponse = entity.Client

// CEPResponse endereço resolvido para GET /api/cep/:cep.
type CEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Cidade     string `json:"cidade"`
	Estado     string `json:"estado"`
}
