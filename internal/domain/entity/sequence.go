package entity

// SequenceCounters contadores monotônicos persistidos em config.json.
// Os dois contadores são independentes; um número nunca é reaproveitado,
// mesmo que o contrato ou a fatura correspondente seja excluído depois.
type SequenceCounters struct {
	LastContractNumber int `json:"ultimo_numero_contrato"`
	LastInvoiceNumber  int `json:"ultimo_numero_fatura"`
}
