//go:build !js && !(windows && (arm || 386)) && !(linux && (ppc64 || mips || mipsle || mips64))

package sqlite

func DSN(path string) string {
	return dsn(path, defaultOptions())
}
