package footballdata

import (
	"context"
	"fmt"
)

// Person fetches a single player or staff member by id.
func (c *Client) Person(ctx context.Context, id int) (*Player, error) {
	var player Player
	if err := c.get(ctx, fmt.Sprintf("%s/%d", PersonsEndpoint, id), nil, &player); err != nil {
		return nil, err
	}

	return &player, nil
}
