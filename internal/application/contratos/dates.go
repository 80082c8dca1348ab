package contratos

import (
	"fmt"
	"time"
)

// isoDate formato de armazenamento das datas.
const isoDate = "2006-01-02"

var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// longDate formata a data por extenso ("02 de janeiro de 2026"), como vai
// impressa na cláusula de assinatura do contrato.
func longDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}
