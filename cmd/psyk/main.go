/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/psykit/psyk/cmd/psyk/cmd"

func main() {
	cmd.Execute()
}
