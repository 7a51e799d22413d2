package billing

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// fallbackPrefix используется, когда в названии салона меньше трёх латинских букв
const fallbackPrefix = "MTM"

// GenerateReference генерирует позив на број для предрачуна:
// "97-" + три первые латинские буквы названия салона в верхнем регистре
// + YYMMDD даты выпуска + три случайные цифры (100-999).
// Формат: ^97-[A-Z]{3}\d{6}\d{3}$
func GenerateReference(salonName string, issuedAt time.Time, rng *rand.Rand) string {
	prefix := letterPrefix(salonName)
	datePart := issuedAt.Format("060102")
	random := rng.Intn(900) + 100
	return fmt.Sprintf("97-%s%s%d", prefix, datePart, random)
}

// letterPrefix извлекает первые три латинские буквы названия.
// Диакритика сербской латиницы (Š, Č, Ž...) не входит в формат
// референса и пропускается
func letterPrefix(salonName string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(salonName) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == 3 {
				return b.String()
			}
		}
	}
	return fallbackPrefix
}
