// Command schoolchat is a terminal client for the school management chatbot.
package main

import "github.com/Samit-B/school-management/internal/commands"

func main() {
	commands.Execute()
}
