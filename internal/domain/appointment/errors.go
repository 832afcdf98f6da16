package appointment

import "errors"

// Falhas transitórias de leitura/escrita no repositório. Nunca devem ser
// confundidas com "nenhum horário disponível" - o chamador pode tentar de
// novo, uma lista vazia não.
var (
	ErrUnavailable   = errors.New("availability_unavailable")
	ErrBookingFailed = errors.New("booking_failed")
)
