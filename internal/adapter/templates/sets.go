package templates

// sectionTemplate is one block of a template set. Content is page markup
// with the topic placeholder substituted at synthesis time.
type sectionTemplate struct {
	title   string
	content string
}

// topicPlaceholder marks where the user's idea text is substituted.
// Plain token substitution is used instead of fmt verbs because the markup
// itself contains literal percent signs.
const topicPlaceholder = "{{topic}}"

// sets maps a template set name to its ordered section templates.
var sets = map[string][]sectionTemplate{
	"classic":    classicSet,
	"storefront": storefrontSet,
}

// classicSet is the default three-section landing page.
var classicSet = []sectionTemplate{
	{
		title: "Hero Section",
		content: `<div class="flex flex-col items-center justify-center py-16 px-4 bg-gradient-to-r from-purple-600 to-blue-500 text-white rounded-lg">
  <h1 class="text-4xl md:text-5xl font-bold mb-4 text-center">Welcome to {{topic}}</h1>
  <p class="text-xl md:text-2xl mb-8 text-center max-w-2xl">Your premier destination for innovative solutions</p>
  <div class="flex flex-wrap gap-4 justify-center">
    <button class="px-6 py-3 bg-white text-purple-600 font-medium rounded-lg hover:bg-gray-100 transition-colors">Get Started</button>
    <button class="px-6 py-3 bg-transparent border-2 border-white text-white font-medium rounded-lg hover:bg-white/10 transition-colors">Learn More</button>
  </div>
</div>`,
	},
	{
		title: "About Section",
		content: `<section class="py-12 px-4 bg-white dark:bg-gray-800 rounded-lg">
  <div class="max-w-6xl mx-auto">
    <h2 class="text-3xl font-bold mb-8 text-center text-gray-800 dark:text-white">About {{topic}}</h2>
    <div class="grid md:grid-cols-2 gap-8 items-center">
      <div class="space-y-4">
        <p class="text-lg text-gray-600 dark:text-gray-300">We are dedicated to providing exceptional services and products that exceed expectations.</p>
        <p class="text-lg text-gray-600 dark:text-gray-300">With years of experience in the industry, our team of experts is committed to delivering high-quality solutions.</p>
      </div>
      <div class="bg-gray-100 dark:bg-gray-700 rounded-lg p-6 aspect-video flex items-center justify-center">
        <p class="text-gray-500 dark:text-gray-400 text-center">Image Placeholder</p>
      </div>
    </div>
  </div>
</section>`,
	},
	{
		title: "Contact Section",
		content: `<section class="py-12 px-4 bg-gray-50 dark:bg-gray-900 rounded-lg">
  <div class="max-w-3xl mx-auto">
    <h2 class="text-3xl font-bold mb-8 text-center text-gray-800 dark:text-white">Get in Touch</h2>
    <div class="bg-white dark:bg-gray-800 rounded-lg shadow-md p-6 md:p-8">
      <div class="mb-6">
        <label for="name" class="block text-sm font-medium text-gray-700 dark:text-gray-300 mb-2">Name</label>
        <input type="text" id="name" placeholder="Your Name" class="w-full px-4 py-2 border border-gray-300 dark:border-gray-600 rounded-md" />
      </div>
      <div class="mb-6">
        <label for="email" class="block text-sm font-medium text-gray-700 dark:text-gray-300 mb-2">Email</label>
        <input type="email" id="email" placeholder="Your Email" class="w-full px-4 py-2 border border-gray-300 dark:border-gray-600 rounded-md" />
      </div>
      <div class="mb-6">
        <label for="message" class="block text-sm font-medium text-gray-700 dark:text-gray-300 mb-2">Message</label>
        <textarea id="message" placeholder="Your Message" rows="4" class="w-full px-4 py-2 border border-gray-300 dark:border-gray-600 rounded-md"></textarea>
      </div>
      <button class="w-full md:w-auto px-6 py-3 bg-gradient-to-r from-purple-600 to-blue-500 text-white font-medium rounded-lg hover:opacity-90 transition-opacity">Send Message</button>
    </div>
  </div>
</section>`,
	},
}

// storefrontSet is the richer six-section page used for shop-style ideas.
var storefrontSet = []sectionTemplate{
	{
		title: "Navbar Section",
		content: `<!-- Navbar Section -->
<nav class="bg-amber-800 text-white">
  <div class="container mx-auto px-4 py-3 flex items-center justify-between">
    <span class="text-xl font-bold">{{topic}}</span>
    <div class="hidden md:flex space-x-6">
      <a href="#home" class="hover:text-amber-200 transition">Home</a>
      <a href="#about" class="hover:text-amber-200 transition">About Us</a>
      <a href="#products" class="hover:text-amber-200 transition">Our Products</a>
      <a href="#contact" class="hover:text-amber-200 transition">Contact</a>
    </div>
  </div>
</nav>`,
	},
	{
		title: "Hero Section",
		content: `<!-- Hero Section -->
<section id="home" class="py-20 bg-amber-50">
  <div class="container mx-auto px-4 text-center">
    <div class="bg-white bg-opacity-80 p-8 rounded-lg max-w-2xl mx-auto shadow-lg">
      <h1 class="text-4xl md:text-5xl font-bold text-amber-800 mb-4">{{topic}}</h1>
      <p class="text-lg md:text-xl text-amber-900 mb-8">Artisanal goods made with love and the finest ingredients</p>
      <div class="w-24 h-1 bg-amber-500 mx-auto my-6"></div>
      <button class="bg-amber-600 hover:bg-amber-700 text-white font-bold py-3 px-8 rounded-full transition">Order Now</button>
    </div>
  </div>
</section>`,
	},
	{
		title: "About Section",
		content: `<!-- About Section -->
<section id="about" class="py-16 bg-white">
  <div class="container mx-auto px-4">
    <div class="text-center mb-12">
      <h2 class="text-3xl font-bold text-amber-800 mb-4">About {{topic}}</h2>
      <div class="w-24 h-1 bg-amber-500 mx-auto"></div>
    </div>
    <div class="bg-amber-50 p-6 rounded-lg shadow-md max-w-3xl mx-auto">
      <h3 class="text-2xl font-semibold text-amber-700 mb-4">Our Story</h3>
      <p class="text-amber-900 mb-6">Founded by a small team, we have been serving the community with quality products made from traditional recipes passed down through generations.</p>
      <div class="grid grid-cols-3 gap-4 text-center">
        <div class="bg-white p-4 rounded-lg shadow"><span class="block text-2xl font-bold text-amber-800">25+</span><span class="text-amber-600 text-sm">Years of Experience</span></div>
        <div class="bg-white p-4 rounded-lg shadow"><span class="block text-2xl font-bold text-amber-800">50+</span><span class="text-amber-600 text-sm">Team Members</span></div>
        <div class="bg-white p-4 rounded-lg shadow"><span class="block text-2xl font-bold text-amber-800">100%</span><span class="text-amber-600 text-sm">Quality Ingredients</span></div>
      </div>
    </div>
  </div>
</section>`,
	},
	{
		title: "Products Section",
		content: `<!-- Products Section -->
<section id="products" class="py-16 bg-amber-100">
  <div class="container mx-auto px-4">
    <div class="text-center mb-12">
      <h2 class="text-3xl font-bold text-amber-800 mb-4">Our Products</h2>
      <div class="w-24 h-1 bg-amber-500 mx-auto mb-6"></div>
      <p class="text-amber-900 max-w-2xl mx-auto">Discover our handcrafted selection made daily with premium ingredients</p>
    </div>
    <div class="grid md:grid-cols-3 gap-8">
      <div class="bg-white rounded-lg overflow-hidden shadow-lg transition transform hover:-translate-y-1">
        <div class="p-6">
          <h3 class="text-xl font-bold text-amber-800 mb-2">Signature Collection</h3>
          <p class="text-amber-700 mb-4">Our classic favorites, crafted slowly for maximum flavor.</p>
          <span class="text-amber-900 font-bold">From $4.99</span>
        </div>
      </div>
      <div class="bg-white rounded-lg overflow-hidden shadow-lg transition transform hover:-translate-y-1">
        <div class="p-6">
          <h3 class="text-xl font-bold text-amber-800 mb-2">Seasonal Specials</h3>
          <p class="text-amber-700 mb-4">Limited runs built around the best ingredients of the season.</p>
          <span class="text-amber-900 font-bold">From $3.50</span>
        </div>
      </div>
      <div class="bg-white rounded-lg overflow-hidden shadow-lg transition transform hover:-translate-y-1">
        <div class="p-6">
          <h3 class="text-xl font-bold text-amber-800 mb-2">Custom Orders</h3>
          <p class="text-amber-700 mb-4">Made to your preferences for any occasion.</p>
          <span class="text-amber-900 font-bold">From $28.99</span>
        </div>
      </div>
    </div>
  </div>
</section>`,
	},
	{
		title: "Contact Section",
		content: `<!-- Contact Section -->
<section id="contact" class="py-16 bg-white">
  <div class="container mx-auto px-4">
    <div class="text-center mb-12">
      <h2 class="text-3xl font-bold text-amber-800 mb-4">Contact Us</h2>
      <div class="w-24 h-1 bg-amber-500 mx-auto mb-6"></div>
      <p class="text-amber-900 max-w-2xl mx-auto">Have a question or want to place an order? Get in touch with our friendly team!</p>
    </div>
    <div class="md:w-1/2 mx-auto bg-amber-50 p-6 rounded-lg shadow-md">
      <h3 class="text-2xl font-semibold text-amber-700 mb-4">Send us a Message</h3>
      <form>
        <div class="mb-4">
          <label class="block text-amber-800 mb-2" for="name">Name</label>
          <input type="text" id="name" class="w-full px-4 py-2 border border-amber-300 rounded" placeholder="Your name" />
        </div>
        <div class="mb-4">
          <label class="block text-amber-800 mb-2" for="email">Email</label>
          <input type="email" id="email" class="w-full px-4 py-2 border border-amber-300 rounded" placeholder="Your email" />
        </div>
        <div class="mb-4">
          <label class="block text-amber-800 mb-2" for="message">Message</label>
          <textarea id="message" rows="4" class="w-full px-4 py-2 border border-amber-300 rounded" placeholder="Your message"></textarea>
        </div>
        <button type="submit" class="bg-amber-600 hover:bg-amber-700 text-white font-bold py-3 px-6 rounded-lg transition w-full">Send Message</button>
      </form>
    </div>
  </div>
</section>`,
	},
	{
		title: "Footer Section",
		content: `<!-- Footer Section -->
<footer class="bg-amber-900 text-white py-10">
  <div class="container mx-auto px-4">
    <div class="flex flex-col md:flex-row justify-between gap-8">
      <div>
        <span class="text-xl font-bold">{{topic}}</span>
        <p class="text-amber-200 mt-2 max-w-sm">Quality you can taste, service you can trust.</p>
      </div>
      <div class="flex space-x-6">
        <a href="#home" class="text-amber-200 hover:text-white transition">Home</a>
        <a href="#about" class="text-amber-200 hover:text-white transition">About</a>
        <a href="#products" class="text-amber-200 hover:text-white transition">Products</a>
        <a href="#contact" class="text-amber-200 hover:text-white transition">Contact</a>
      </div>
    </div>
    <div class="border-t border-amber-800 mt-10 pt-6 text-center text-amber-200">
      <p>&copy; {{topic}}. All rights reserved.</p>
    </div>
  </div>
</footer>`,
	},
}
