// Package logger is a standardized event logging framework for the parser
// tools.
package logger
