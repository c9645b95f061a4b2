// Package source describes where table documents come from and the contracts
// for loading and decoding them. Implementations live under internal/source;
// construction helpers are exposed by the root sorttable package.
package source
