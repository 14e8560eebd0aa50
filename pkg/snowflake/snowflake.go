package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenOrderSn returns the serial number for a new order.
func GenOrderSn() string {
	return node.Generate().String()
}

func GenID() int64 {
	return node.Generate().Int64()
}
