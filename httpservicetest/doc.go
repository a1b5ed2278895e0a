// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package httpservicetest contains test tooling for code that declares or
invokes httpservice operations: a viper-aware testify suite, fx application
helpers, and mocks for resolvers, exchangers, and round trippers.
*/
package httpservicetest
