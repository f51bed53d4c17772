// Command ugraph loads YAML graph files and runs BFS, DFS and Dijkstra over them.
package main

import "github.com/katalvlaran/ugraph/cmd/ugraph/commands"

func main() {
	commands.Execute()
}
