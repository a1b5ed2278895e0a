// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package httpserviceclient executes bound httpservice operations over net/http.

A Client is the standard httpservice.Exchanger.  It turns each
httpservice.RequestDefinition into an *http.Request relative to a base url,
encodes any body according to the definition's content type, and sends the
request through a decorated http.RoundTripper.

Clients can be created directly from a ClientConfig or unmarshaled into an
uber/fx application with ProvideClient or Provide.
*/
package httpserviceclient
