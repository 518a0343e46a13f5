// Package account contains the Account entity for both roles the backend
// serves: administrators who create and assign deliveries, and delivery
// agents who carry them out. The agent directory the assignment workflow
// consults is the subset of accounts holding the agent role.
package account
