// Package hint parses secret hints found in configuration.
//
// A hint is a short string that says where a secret's real value lives,
// so the secret itself never has to appear in a config file:
//   - Environment variable:  env:DB_PASSWORD
//   - File contents:         file:/run/secrets/db_password
//   - The literal value:     hunter2
//
// Parse is total: any string that does not match a recognized scheme is
// treated as a literal secret. This is deliberate, so values like
// "user:pass" work without escaping. The trade-off is that a typo'd
// scheme ("evn:FOO") silently becomes a literal; callers that want to
// catch that can inspect Hint.Kind after parsing.
//
// A Hint is pure data and performs no I/O. Resolution lives in the
// secret package.
package hint
