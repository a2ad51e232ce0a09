// This file is part of gpretro.
//
// gpretro is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gpretro is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gpretro.  If not, see <https://www.gnu.org/licenses/>.

package libretro

/*
#include "bridge.h"
#include <stdarg.h>
#include <stdio.h>

bool gpretroEnvironment(unsigned cmd, void *data);
void gpretroVideoRefresh(void *data, unsigned width, unsigned height, size_t pitch);
void gpretroInputPoll(void);
int16_t gpretroInputState(unsigned port, unsigned device, unsigned index, unsigned id);
void gpretroAudioSample(int16_t left, int16_t right);
size_t gpretroAudioSampleBatch(void *data, size_t frames);
void gpretroLog(unsigned level, char *msg);

static bool environment_cgo(unsigned cmd, void *data) {
	return gpretroEnvironment(cmd, data);
}

static void video_refresh_cgo(const void *data, unsigned width, unsigned height, size_t pitch) {
	gpretroVideoRefresh((void *)data, width, height, pitch);
}

static void input_poll_cgo(void) {
	gpretroInputPoll();
}

static int16_t input_state_cgo(unsigned port, unsigned device, unsigned index, unsigned id) {
	return gpretroInputState(port, device, index, id);
}

static void audio_sample_cgo(int16_t left, int16_t right) {
	gpretroAudioSample(left, right);
}

static size_t audio_sample_batch_cgo(const int16_t *data, size_t frames) {
	return gpretroAudioSampleBatch((void *)data, frames);
}

static void log_cgo(enum retro_log_level level, const char *fmt, ...) {
	char msg[4096] = {0};
	va_list va;
	va_start(va, fmt);
	vsnprintf(msg, sizeof(msg), fmt, va);
	va_end(va);

	gpretroLog((unsigned)level, msg);
}

void bridge_set_log_interface(void *data) {
	((struct retro_log_callback *)data)->log = log_cgo;
}

void bridge_keyboard_event(retro_keyboard_event_t f, bool down, unsigned keycode, uint32_t character, uint16_t mods) {
	f(down, keycode, character, mods);
}

void bridge_retro_set_environment(void *f) {
	((void (*)(retro_environment_t))f)(environment_cgo);
}

void bridge_retro_set_video_refresh(void *f) {
	((void (*)(retro_video_refresh_t))f)(video_refresh_cgo);
}

void bridge_retro_set_input_poll(void *f) {
	((void (*)(retro_input_poll_t))f)(input_poll_cgo);
}

void bridge_retro_set_input_state(void *f) {
	((void (*)(retro_input_state_t))f)(input_state_cgo);
}

void bridge_retro_set_audio_sample(void *f) {
	((void (*)(retro_audio_sample_t))f)(audio_sample_cgo);
}

void bridge_retro_set_audio_sample_batch(void *f) {
	((void (*)(retro_audio_sample_batch_t))f)(audio_sample_batch_cgo);
}

void bridge_retro_void(void *f) {
	((void (*)(void))f)();
}

unsigned bridge_retro_api_version(void *f) {
	return ((unsigned (*)(void))f)();
}

void bridge_retro_get_system_info(void *f, struct retro_system_info *si) {
	((void (*)(struct retro_system_info *))f)(si);
}

void bridge_retro_get_system_av_info(void *f, struct retro_system_av_info *si) {
	((void (*)(struct retro_system_av_info *))f)(si);
}

void bridge_retro_set_controller_port_device(void *f, unsigned port, unsigned device) {
	((void (*)(unsigned, unsigned))f)(port, device);
}

bool bridge_retro_load_game(void *f, struct retro_game_info *gi) {
	return ((bool (*)(const struct retro_game_info *))f)(gi);
}

size_t bridge_retro_serialize_size(void *f) {
	return ((size_t (*)(void))f)();
}

bool bridge_retro_serialize(void *f, void *data, size_t size) {
	return ((bool (*)(void *, size_t))f)(data, size);
}

bool bridge_retro_unserialize(void *f, void *data, size_t size) {
	return ((bool (*)(const void *, size_t))f)(data, size);
}
*/
import "C"
