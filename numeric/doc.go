// Package numeric provides the saturating-arithmetic sentinel shared by the
// oracle, block and blockdtw packages. The engine represents +infinity as a
// large finite value (not the theoretical maximum) so that repeated
// saturating additions can never overflow and silently wrap.
package numeric
