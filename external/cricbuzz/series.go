package cricbuzz

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/riskibarqy/cricket-analytics/internal/domain/cricket"
)

// ListSeries returns the series archived for kind in year, in upstream order.
// Narrowing league listings to one competition is left to the caller.
func (c *Client) ListSeries(ctx context.Context, kind cricket.Kind, year int) ([]cricket.Series, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))

	var envelope seriesArchiveEnvelope
	if err := c.doJSON(ctx, "list_series", fmt.Sprintf("/series/v1/archives/%s", url.PathEscape(string(kind))), query, &envelope); err != nil {
		return nil, err
	}

	return envelope.seriesForYear(year), nil
}

func (c *Client) ListMatches(ctx context.Context, seriesID int64) (cricket.RawMatchPayload, error) {
	var envelope seriesMatchesEnvelope
	if err := c.doJSON(ctx, "list_matches", fmt.Sprintf("/series/v1/%d", seriesID), nil, &envelope); err != nil {
		return cricket.RawMatchPayload{}, err
	}

	return envelope.toRawPayload(), nil
}
