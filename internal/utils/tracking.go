package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet sans caractères ambigus (pas de 0/O ni 1/I)
const trackingAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// GenerateTrackingCode génère un code de suivi opaque côté client,
// distinct de l'identifiant interne de la commande. Format: AL-XXXXXXXX
func GenerateTrackingCode() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand ne doit jamais échouer en pratique
		panic(err)
	}

	var sb strings.Builder
	for _, b := range buf {
		sb.WriteByte(trackingAlphabet[int(b)%len(trackingAlphabet)])
	}
	return fmt.Sprintf("AL-%s", sb.String())
}
