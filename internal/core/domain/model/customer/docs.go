// Package customer contains the Customer aggregate and its owned Address
// entities. Addresses are created and removed through the aggregate and are
// deleted with it; other entities reference addresses by id only.
package customer
