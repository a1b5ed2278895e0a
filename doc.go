// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package httpservice describes HTTP operations declaratively and binds
runtime arguments to them.

# Declarations and descriptors

An operation starts life as a Declaration, usually through one of the
verb-specific types such as GetRequest.  NewDescriptor resolves the
Value and URL aliases, validates the declaration, and produces an immutable
Descriptor.

# Binding

A Binder offers each argument of an invocation to an ordered chain of
ArgumentResolver strategies.  The first resolver to claim an argument
contributes it to a RequestDefinition.  Arguments nobody claims are errors.

# Execution

An Invoker hands a bound RequestDefinition to an Exchanger.  The
httpserviceclient package contains the standard Exchanger built on net/http.

# Configuration

Services can be unmarshaled from viper with ProvideService, and wired into
an uber/fx application together with ForViper, ProvideBinder, and ProvideInvoker.
*/
package httpservice
