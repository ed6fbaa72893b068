// Package catalogapi is the single gateway to the remote services-catalog
// REST API.
//
// Every outbound call goes through Client, which validates the response
// content type and flattens all failure shapes (application errors,
// transport failures, misrouted HTML responses, request build errors)
// into *APIError. Callers never see a raw transport error: they either
// receive a decoded payload or an *APIError whose Status distinguishes
// "the server answered with a failure" from "the network was never
// reached" (Status == 0).
//
// ServicesClient and RequestsClient are thin method tables over Client;
// they add paths and types but no behavior of their own.
package catalogapi
