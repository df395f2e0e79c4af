/*
   Copyright 2026 The resources-io Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package resources verifies remote calls against a declared contract and
// normalizes every failure into one closed set of error kinds.
//
// A Resource is declared once per remote operation with three codecs: the
// request payload, the data of a success response, and the resource's own
// failures. Every call then goes through it:
//
//	var createGame = resources.New(resources.Config[CreateGame, Game]{
//		Name:     "games.create",
//		Request:  codec.JSON[CreateGame]("createGame"),
//		Response: codec.JSON[Game]("game"),
//		Error:    kind.Custom("GameLimitReached", codec.Any()),
//	})
//
//	// client side
//	res := createGame.Request(ctx, CreateGame{Variant: "blitz"}, transport)
//
//	// server side
//	in := createGame.ParseRequest(raw)
//
// Responses travel in the envelope of package envelope. Request never
// panics and never returns an untyped error: the outcome is the decoded data
// or exactly one *kind.Error.
package resources
