// Package logger records the commands a shell session executes as newline
// delimited JSON and summarizes them.
package logger
