// Command notebook serves the site and manages its content database.
package main

func main() {
	Execute()
}
