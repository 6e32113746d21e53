/*
*	Copyright (c) 2023
*	John's Page All rights reserved.
*
*	Redistribution and use in source and binary forms, with or without
*	modification, are permitted provided that the following conditions
*	are met:
*
*	Redistributions of source code must retain the above copyright notice,
*	this list of conditions and the following disclaimer.
*
*	THIS SOFTWARE IS PROVIDED BY [Name of Organization] “AS IS” AND ANY EXPRESS
*	OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES
*	OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO
*	EVENT SHALL [Name of Organisation] BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
*	SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
*	PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS;
*	OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER
*	IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
*	ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY
*	OF SUCH DAMAGE.
 */
package gollowmap

import (
	"cmp"
	"log"
)

type MapOption[K any] struct {
	comparator  Comparator[K]
	policy      BalancePolicy
	logger      *log.Logger
	compression Compression
}

func NewMapOption[K any]() *MapOption[K] {
	return &MapOption[K]{
		policy:      RedBlack,
		compression: NewSnappyCompression(),
	}
}

func NewOrderedMapOption[K cmp.Ordered]() *MapOption[K] {
	option := NewMapOption[K]()
	option.comparator = OrderedComparator[K]()
	return option
}

func (i *MapOption[K]) SetComparator(comparator Comparator[K]) {
	i.comparator = comparator
}

func (i *MapOption[K]) SetBalancePolicy(policy BalancePolicy) {
	i.policy = policy
}

func (i *MapOption[K]) SetLogger(logger *log.Logger) {
	i.logger = logger
}

func (i *MapOption[K]) SetCompression(compression Compression) {
	i.compression = compression
}

func (i *MapOption[K]) GetComparator() Comparator[K] {
	return i.comparator
}

func (i *MapOption[K]) GetBalancePolicy() BalancePolicy {
	return i.policy
}

func (i *MapOption[K]) GetCompression() Compression {
	return i.compression
}
