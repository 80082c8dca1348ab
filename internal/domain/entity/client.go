package entity

// Tipos de pessoa aceitos no cadastro.
const (
	PersonTypeIndividual = "Pessoa Física"
	PersonTypeCompany    = "Pessoa Jurídica"
)

// LegalRepresentative representante legal, obrigatório para Pessoa Jurídica.
type LegalRepresentative struct {
	Name      string `json:"nome"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"data_nascimento,omitempty"`
	Phone     string `json:"telefone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Client representa um cliente cadastrado (PF ou PJ).
// As tags JSON seguem o formato dos arquivos clients.json já existentes.
type Client struct {
	ID         string               `json:"id"`
	PersonType string               `json:"tipo_pessoa"`
	LegalName  string               `json:"nome_razao_social"`
	TaxID      string               `json:"cpf_cnpj"` // forma canônica mascarada (000.000.000-00 / 00.000.000/0000-00)
	BirthDate  string               `json:"data_nascimento,omitempty"` // ISO, apenas PF
	Email      string               `json:"email,omitempty"`
	Phone      string               `json:"telefone,omitempty"`
	PostalCode string               `json:"cep,omitempty"`
	City       string               `json:"cidade,omitempty"`
	State      string               `json:"estado,omitempty"`
	Address    string               `json:"endereco,omitempty"`
	LegalRep   *LegalRepresentative `json:"representante_legal,omitempty"`
}
