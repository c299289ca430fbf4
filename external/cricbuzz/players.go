package cricbuzz

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/riskibarqy/cricket-analytics/internal/domain/player"
)

type playerSearchEnvelope struct {
	Player []playerSearchItem `json:"player"`
}

type playerSearchItem struct {
	ID          flexString `json:"id"`
	Name        string     `json:"name"`
	TeamName    string     `json:"teamName"`
	FaceImageID flexString `json:"faceImageId"`
	DOB         string     `json:"dob"`
}

type playerInfoPayload struct {
	ID         flexString `json:"id"`
	Name       string     `json:"name"`
	NickName   string     `json:"nickName"`
	Role       string     `json:"role"`
	Bat        string     `json:"bat"`
	Bowl       string     `json:"bowl"`
	IntlTeam   string     `json:"intlTeam"`
	BirthPlace string     `json:"birthPlace"`
	DoB        string     `json:"DoB"`
	Image      string     `json:"image"`
	Teams      string     `json:"teams"`
}

type statsTablePayload struct {
	Headers []string        `json:"headers"`
	Values  []statsRowValue `json:"values"`
}

type statsRowValue struct {
	Values []string `json:"values"`
}

func (c *Client) SearchPlayers(ctx context.Context, query string) ([]player.Summary, error) {
	values := url.Values{}
	values.Set("plrN", query)

	var envelope playerSearchEnvelope
	if err := c.doJSON(ctx, "search_players", "/stats/v1/player/search", values, &envelope); err != nil {
		return nil, err
	}

	out := make([]player.Summary, 0, len(envelope.Player))
	for _, item := range envelope.Player {
		if item.ID == "" {
			continue
		}
		out = append(out, player.Summary{
			ID:          item.ID.String(),
			Name:        strings.TrimSpace(item.Name),
			TeamName:    strings.TrimSpace(item.TeamName),
			FaceImageID: item.FaceImageID.String(),
			DateOfBirth: strings.TrimSpace(item.DOB),
		})
	}
	return out, nil
}

func (c *Client) GetPlayerInfo(ctx context.Context, playerID string) (player.Info, error) {
	var payload playerInfoPayload
	if err := c.doJSON(ctx, "player_info", fmt.Sprintf("/stats/v1/player/%s", url.PathEscape(playerID)), nil, &payload); err != nil {
		return player.Info{}, err
	}

	return player.Info{
		ID:           firstNonEmpty(payload.ID.String(), playerID),
		Name:         strings.TrimSpace(payload.Name),
		NickName:     strings.TrimSpace(payload.NickName),
		Role:         strings.TrimSpace(payload.Role),
		BattingStyle: strings.TrimSpace(payload.Bat),
		BowlingStyle: strings.TrimSpace(payload.Bowl),
		IntlTeam:     strings.TrimSpace(payload.IntlTeam),
		BirthPlace:   strings.TrimSpace(payload.BirthPlace),
		DateOfBirth:  strings.TrimSpace(payload.DoB),
		ImageURL:     strings.TrimSpace(payload.Image),
		Teams:        strings.TrimSpace(payload.Teams),
	}, nil
}

func (c *Client) GetPlayerBatting(ctx context.Context, playerID string) (player.StatsTable, error) {
	return c.getStatsTable(ctx, "player_batting", fmt.Sprintf("/stats/v1/player/%s/batting", url.PathEscape(playerID)))
}

func (c *Client) GetPlayerBowling(ctx context.Context, playerID string) (player.StatsTable, error) {
	return c.getStatsTable(ctx, "player_bowling", fmt.Sprintf("/stats/v1/player/%s/bowling", url.PathEscape(playerID)))
}

func (c *Client) getStatsTable(ctx context.Context, op, path string) (player.StatsTable, error) {
	var payload statsTablePayload
	if err := c.doJSON(ctx, op, path, nil, &payload); err != nil {
		return player.StatsTable{}, err
	}

	table := player.StatsTable{
		Headers: append([]string(nil), payload.Headers...),
		Rows:    make([]player.StatRow, 0, len(payload.Values)),
	}
	for _, row := range payload.Values {
		if len(row.Values) == 0 {
			continue
		}
		table.Rows = append(table.Rows, player.StatRow{
			Label:  strings.TrimSpace(row.Values[0]),
			Values: append([]string(nil), row.Values...),
		})
	}
	return table, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
