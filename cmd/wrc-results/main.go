// Command wrc-results exports WRC rally results as CSV files and terminal
// summaries.
package main

func main() {
	Execute()
}
