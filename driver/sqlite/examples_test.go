//go:build !js && !(windows && (arm || 386)) && !(linux && (ppc64 || mips || mipsle || mips64))

package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tarantool/go-revstore/driver/sqlite"
)

func ExampleNew() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "revstore")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer func() { _ = os.RemoveAll(dir) }()

	drv, err := sqlite.New(ctx, filepath.Join(dir, "state.db"))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer func() { _ = drv.Close() }()

	rev, _ := drv.Put(ctx, "/config/mode", []byte("active"))
	fmt.Println("put revision:", rev)

	rev, _ = drv.Delete(ctx, "/config/mode")
	fmt.Println("delete revision:", rev)

	rev, _ = drv.Delete(ctx, "/config/mode")
	fmt.Println("repeated delete revision:", rev)

	// Output:
	// put revision: 1
	// delete revision: 2
	// repeated delete revision: 2
}
