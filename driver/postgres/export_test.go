package postgres

var RedactDSN = redactDSN
