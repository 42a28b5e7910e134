package postgres

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("percentEncode", func() {
	Context("with all reserved characters", func() {
		It("should replace every one with its uppercase escape", func() {
			Ω(percentEncode("!#$&'()*+,/:;=?@[]")).To(
				Equal("%21%23%24%26%27%28%29%2A%2B%2C%2F%3A%3B%3D%3F%40%5B%5D"))
		})
	})
	Context("with a mix of reserved and unreserved characters", func() {
		It("should only replace the reserved ones", func() {
			Ω(percentEncode("test!")).To(Equal("test%21"))
			Ω(percentEncode("ûñïçôdé")).To(Equal("ûñïçôdé"))
		})
	})
	Context("with a literal percent sign", func() {
		It("should pass it through unescaped", func() {
			Ω(percentEncode("100%")).To(Equal("100%"))
			Ω(percentEncode("%21")).To(Equal("%21"))
		})
	})
	Context("with the empty string", func() {
		It("should return the empty string", func() {
			Ω(percentEncode("")).To(BeEmpty())
		})
	})
})
