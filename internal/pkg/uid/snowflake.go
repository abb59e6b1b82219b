package uid

import "github.com/bwmarrin/snowflake"

// Snowflake is a NumberID backed by Twitter snowflake identifiers. IDs are
// time-sortable, which keeps index writes append-only.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a generator bound to the given node number.
func NewSnowflake(node int64) (*Snowflake, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: n}, nil
}

// Generate returns a new snowflake id.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
