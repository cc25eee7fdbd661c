// Prodscan - production hygiene tooling for user group exports and
// Azure resource inventories.
package main

func main() {
	Execute()
}
