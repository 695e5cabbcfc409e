/*
Package library holds the pricing and address helpers shared by the router
and by off-chain callers.

Quote, GetAmountOut and GetAmountIn are pure functions over signed 128-bit
amounts with a 0.3% fee applied to the input side. SortTokens and PairFor
derive the address a factory deploys the pair of two tokens to, without
reading any state. GetReserves and the GetAmounts helpers read live reserves
from the pairs along a path.
*/
package library
