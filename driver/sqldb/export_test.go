package sqldb

var RandRetryDelay = randRetryDelay

func (d *Dialect) Rebind(query string) string {
	return d.rebind(query)
}

func (d *Dialect) LimitArg(limit int64) any {
	return d.limitArg(limit)
}

func (d *Dialect) ListPrefixQuery() string {
	return d.rendered().listPrefix
}
