// Command contacts is a console phone book for people and organizations.
package main

import "github.com/mesh-intelligence/contacts/internal/cli"

func main() {
	cli.Execute()
}
