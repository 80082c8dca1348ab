package entity

import "strings"

// DocumentFileName nome do PDF do contrato: CONTRATO_<numero>_<nome>.pdf.
func (c *Contract) DocumentFileName() string {
	return "CONTRATO_" + c.Number + "_" + fileNamePart(c.Client.LegalName) + ".pdf"
}

// DocumentFileName nome do PDF da fatura: FATURA_<numero>_<nome>.pdf.
func (i *Invoice) DocumentFileName() string {
	return "FATURA_" + i.Number + "_" + fileNamePart(i.ClientInfo.LegalName) + ".pdf"
}

// fileNamePart troca espaços por sublinhado e remove separadores de caminho.
func fileNamePart(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(s)
}
