// Package utils holds small transport helpers shared by the server and the
// command-line client: JSON responses, the resty client and trace ids.
package utils
