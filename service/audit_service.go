package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordlister/service/hasher"
)

// Audit looks for the plaintext of hashed among the candidate lines.
// It returns the matching candidate, without its newline, and whether one was found.
func (s *Service) Audit(ctx context.Context, h hasher.Hasher, hashed string, lines []string) (string, bool, error) {
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		candidate := strings.TrimSuffix(line, "\n")
		ok, err := h.Match(hashed, candidate)
		if err != nil {
			return "", false, err
		}
		if ok {
			log.Info().Int("tried", i+1).Msg("hash plaintext found")
			return candidate, true, nil
		}
	}
	log.Info().Int("tried", len(lines)).Msg("hash plaintext not in list")
	return "", false, nil
}
