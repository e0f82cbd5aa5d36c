/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/rainchen/dwr-cli/cmd"

func main() {
	cmd.Execute()
}
