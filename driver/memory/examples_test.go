package memory_test

import (
	"context"
	"fmt"

	"github.com/tarantool/go-revstore/driver/memory"
)

func ExampleNew() {
	ctx := context.Background()
	drv := memory.New()

	_, _ = drv.Put(ctx, "/root/status", []byte("active"))
	_, _ = drv.Put(ctx, "/root/health", []byte("OK"))
	_, _ = drv.Put(ctx, "/root/status", []byte("standby"))

	kvs, _ := drv.ListCurrent(ctx, "/root/", 0, false)
	for _, item := range kvs {
		fmt.Printf("%s=%s create=%d mod=%d\n", item.Key, item.Value, item.CreateRevision, item.ModRevision)
	}

	// Output:
	// /root/health=OK create=2 mod=2
	// /root/status=standby create=1 mod=3
}
