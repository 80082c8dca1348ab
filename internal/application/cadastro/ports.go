package cadastro

import "context"

// CEPAddress endereço resolvido a partir de um CEP.
type CEPAddress struct {
	CEP      string
	Street   string
	District string
	City     string
	State    string
}

// CEPLookup porto de consulta de CEP (implementado pelo cliente ViaCEP).
type CEPLookup interface {
	// Lookup devolve o endereço do CEP ou domain.ErrNotFound quando o CEP não
	// existe ou o serviço não pôde responder.
	Lookup(ctx context.Context, cep string) (*CEPAddress, error)
}
