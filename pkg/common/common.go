package common

import (
	"os"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cast"
)

var (
	idNode *snowflake.Node
	once   sync.Once
)

func node() *snowflake.Node {
	once.Do(func() {
		// Node id can be set per instance when several catalogd
		// processes share a data source.
		nid := cast.ToInt64(os.Getenv("CATALOGD_NODE_ID"))
		if nid <= 0 || nid > 1023 {
			nid = 1
		}
		n, err := snowflake.NewNode(nid)
		if err != nil {
			panic(err)
		}
		idNode = n
	})
	return idNode
}

// UUID returns a new snowflake-based string identifier.
func UUID() string {
	return node().Generate().String()
}

// UUIDint64 returns a new snowflake identifier as int64.
func UUIDint64() int64 {
	return node().Generate().Int64()
}
