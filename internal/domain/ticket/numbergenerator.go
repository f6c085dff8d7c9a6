package ticket

import (
	"context"
)

// NumberGenerator produces the externally visible ticket number,
// formatted TKT-<4-digit-year>-<6-digit-zero-padded-sequence>. The
// sequence resets each calendar year and must be strictly increasing
// under concurrent creation, which requires serialized allocation at the
// storage layer rather than a read-then-write in application memory.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}
