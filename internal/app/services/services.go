// Package services holds the core operations behind the route layer. Every
// operation validates its input, talks to the repositories and returns the
// uniform result envelope; failures never escape as errors.
//
// Services defined in this package:
// - InstitutionService: institution, author and book operations
// - UserService: user creation, lookup and credential checks
// - TenantResolver: email-domain to institution binding
package services
