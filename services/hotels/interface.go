package hotels

import (
	"context"

	"tripweaver/models"
)

// SearchClient is an opaque hotel price lookup. An empty result list is not
// an error; implementations return an error only for transport or parse
// failures.
type SearchClient interface {
	Search(ctx context.Context, destination, checkIn, checkOut string) ([]models.HotelOption, error)
}
